package game

// Read accessors for the presentation boundary. Each takes the engine
// lock so views always observe a consistent snapshot.

// State returns the engine's lifecycle position.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Err returns the terminal initialization or submission error, nil if
// none occurred.
func (e *Engine) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.initErr != nil {
		return e.initErr
	}
	return e.submitErr
}

// Session returns the server-assigned session identity. Zero before
// Start succeeds.
func (e *Engine) Session() Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}

// Current returns a copy of the current question, or nil before the
// session starts.
func (e *Engine) Current() *Question {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.questions) == 0 {
		return nil
	}
	q := *e.questions[e.current]
	return &q
}

// Index is the zero-based position of the current question.
func (e *Engine) Index() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// Total is the number of questions in the session.
func (e *Engine) Total() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.questions)
}

// Selected returns the tentative choice for the current question,
// empty if none.
func (e *Engine) Selected() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selected
}

// Submitted reports whether the current question's answer has been
// committed.
func (e *Engine) Submitted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.submitted
}

// Message is the feedback phrase for the last submission, empty
// between questions.
func (e *Engine) Message() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.message
}

// Elapsed returns whole session seconds, clamped to the time limit.
func (e *Engine) Elapsed() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clockElapsedLocked()
}

// ConfirmingCancel reports whether the cancel confirmation is showing.
func (e *Engine) ConfirmingCancel() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.confirmingCancel
}

// Results returns the finalized summary, nil until the engine is Done.
func (e *Engine) Results() *Results {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.results
}
