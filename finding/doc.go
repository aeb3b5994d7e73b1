// Package finding defines the common record shape shared by remediation
// tasks and vulnerabilities, plus the enumerated axes the console engines
// sort and filter on.
//
// Tasks and vulnerabilities keep distinct workflow status sets, so
// terminal-ness (closed for SLA purposes) is exposed as a per-kind
// TerminalFunc predicate rather than hardcoded labels. The Record type is
// the projection both kinds satisfy; the query and timeline packages only
// ever operate on it.
package finding
