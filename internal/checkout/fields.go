package checkout

// FieldState tracks what the core is allowed to know about one opaque field:
// whether the input layer currently considers it valid, and whether it holds
// focus. Raw values never cross the security boundary.
type FieldState struct {
	Valid   bool
	Focused bool
}

// RequiredFields are the opaque fields that must all report valid before a
// submit is eligible. The cardholder name is tracked for focus and glow but
// never gates submission.
var RequiredFields = []string{"number", "expiry", "cvv", "postal"}

// KnownFields are every field the controller reacts to.
var KnownFields = append([]string{"name"}, RequiredFields...)

func newFieldStates() map[string]*FieldState {
	m := make(map[string]*FieldState, len(KnownFields))
	for _, f := range KnownFields {
		m[f] = &FieldState{}
	}
	return m
}
