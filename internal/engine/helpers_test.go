package engine

// Pointer helpers for building sparse records in tests.
func f(v float64) *float64 { return &v }
func ip(v int) *int        { return &v }
