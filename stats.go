package vec

// Stats contains a snapshot of a vector's storage accounting.
type Stats struct {
	Len         int     // live elements
	Cap         int     // allocated slots
	Spare       int     // allocated slots not in use
	Utilization float64 // Len / Cap, 0 when no buffer (0.0-1.0)
	Growths     uint64  // reallocating growth steps since construction
}

// Stats returns a snapshot of the vector's storage accounting.
func (v *Vector[T]) Stats() Stats {
	s := Stats{
		Len:     v.size,
		Cap:     v.buf.cap,
		Spare:   v.buf.cap - v.size,
		Growths: v.growths,
	}
	if v.buf.cap > 0 {
		s.Utilization = float64(v.size) / float64(v.buf.cap)
	}
	return s
}
