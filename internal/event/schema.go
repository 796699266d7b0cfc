package event

// CurrentVersion is the schema version stamped on every event built by the
// emitter. Bump it whenever the Event shape or a per-topic data layout
// changes in a way consumers must opt into.
const CurrentVersion uint32 = 1

// IsCompatible reports whether a consumer that understands CurrentVersion
// can parse an event stamped with v. The rule is strictly forward: v must
// not exceed CurrentVersion, and the consumer is assumed to understand all
// older layouts too.
//
// This is a necessary check, not a sufficient one. It only compares version
// numbers: if a future change altered which metadata keys a topic populates
// without bumping CurrentVersion, IsCompatible would still return true.
func IsCompatible(v uint32) bool {
	return v <= CurrentVersion
}
