package finding

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Task represents a remediation task as delivered by the backend.
type Task struct {
	// ID is a unique identifier for the task.
	ID string `json:"id"`

	// Key is the human-readable short code, e.g. "APP-001".
	Key string `json:"key"`

	// Title is a brief summary of the task.
	Title string `json:"title"`

	// Description provides detailed information about the task.
	Description string `json:"description,omitempty"`

	// Category classifies the remediation track.
	Category Category `json:"category"`

	// Priority is the task's ordinal axis, same label set as severity.
	Priority Severity `json:"priority"`

	// Status is the current workflow state.
	Status string `json:"status"`

	// Assignee is the person responsible for the task.
	Assignee string `json:"assignee,omitempty"`

	// Labels are arbitrary tags for categorization.
	Labels []string `json:"labels,omitempty"`

	// CreatedDate is the ISO creation date. Immutable once set.
	CreatedDate string `json:"created_date"`

	// UpdatedDate is the ISO last-update date, always >= CreatedDate.
	UpdatedDate string `json:"updated_date"`

	// DueDate is the ISO SLA due date. Empty means no SLA.
	DueDate string `json:"due_date,omitempty"`
}

// NewTask creates a new task with an auto-generated ID and both date fields
// set to today.
func NewTask(key, title string, category Category, priority Severity) *Task {
	today := time.Now().UTC().Format("2006-01-02")
	return &Task{
		ID:          uuid.New().String(),
		Key:         key,
		Title:       title,
		Category:    category,
		Priority:    priority,
		Status:      TaskStatusToDo,
		CreatedDate: today,
		UpdatedDate: today,
	}
}

// SetStatus updates the task status and bumps the update date.
// Returns an error if the label is outside the task status set.
func (t *Task) SetStatus(status string) error {
	if !KindTask.ValidStatus(status) {
		return fmt.Errorf("invalid task status: %s", status)
	}
	t.Status = status
	t.UpdatedDate = time.Now().UTC().Format("2006-01-02")
	return nil
}

// Validate checks that the task has all required fields and valid values.
func (t *Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("task ID is required")
	}
	if t.Key == "" {
		return fmt.Errorf("task key is required")
	}
	if t.Title == "" {
		return fmt.Errorf("title is required")
	}
	if !t.Category.IsValid() {
		return fmt.Errorf("invalid category: %s", t.Category)
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", t.Priority)
	}
	if !KindTask.ValidStatus(t.Status) {
		return fmt.Errorf("invalid task status: %s", t.Status)
	}
	if t.CreatedDate == "" {
		return fmt.Errorf("created date is required")
	}
	if ParseStamp(t.UpdatedDate).Before(ParseStamp(t.CreatedDate)) {
		return fmt.Errorf("updated date %s precedes created date %s", t.UpdatedDate, t.CreatedDate)
	}
	return nil
}

// Record projects the task into the common finding shape.
func (t *Task) Record() Record {
	return Record{
		ID:          t.ID,
		Key:         t.Key,
		Title:       t.Title,
		Kind:        KindTask,
		Category:    t.Category,
		Severity:    t.Priority,
		Status:      t.Status,
		CreatedDate: t.CreatedDate,
		UpdatedDate: t.UpdatedDate,
		DueDate:     t.DueDate,
		Assignee:    t.Assignee,
		Labels:      t.Labels,
	}
}

// TaskRecords projects a slice of tasks into finding records, preserving
// order.
func TaskRecords(tasks []Task) []Record {
	records := make([]Record, len(tasks))
	for i := range tasks {
		records[i] = tasks[i].Record()
	}
	return records
}
