package state

// status carries the two bookkeeping fields every slice has. Transitions:
//
//	pending:   Loading=true, Err cleared
//	fulfilled: Loading=false, Err cleared, data merged per operation
//	rejected:  Loading=false, Err set, data left unchanged
type status struct {
	Loading bool
	Err     string
}

func (st *status) begin() {
	st.Loading = true
	st.Err = ""
}

func (st *status) fail(err error) {
	st.Loading = false
	st.Err = err.Error()
}

func (st *status) done() {
	st.Loading = false
	st.Err = ""
}
