// Package console is the core library behind the security posture
// management console: the findings query pipeline, the SLA timeline
// classifier, and the asset hierarchy tree builder, shared by the AppSec
// and OffSec surfaces instead of being duplicated per tab.
//
// # Core Concepts
//
// The library is organized around three engines over in-memory data:
//
//   - query: filter, sort, and paginate finding records
//   - timeline: bucket finding lifecycle dates into calendar days
//   - asset: build the tenant → project → sub-project → environment tree
//
// The finding package defines the record projection both tasks and
// vulnerabilities satisfy, so the engines never see record-kind-specific
// shapes; kind differences are confined to adapter functions and the
// per-kind terminal-status predicate.
//
// # Getting Started
//
// Create a console and run a findings query:
//
//	c, err := console.New(
//		console.WithLogger(logger),
//		console.WithConfig("/etc/console.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	records := finding.VulnerabilityRecords(vulns)
//	res := c.Query(ctx, records, query.Filters{
//		query.FieldSeverity: "Critical",
//	}, query.SortCreated, query.OrderDesc, 1)
//
// Everything is a pure computation over the caller's data snapshot; there
// is no storage, transport, or background work behind any call.
package console
