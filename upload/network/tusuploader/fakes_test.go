package tusuploader

type fakeSession struct {
	previous  []PreviousUpload
	findErr   error
	resumeErr error
	start     func(cb Callbacks)

	resumedFrom []PreviousUpload
	started     bool
	aborted     bool
	closed      bool
}

func (s *fakeSession) FindPreviousUploads() ([]PreviousUpload, error) {
	return s.previous, s.findErr
}

func (s *fakeSession) ResumeFromPreviousUpload(prev PreviousUpload) error {
	s.resumedFrom = append(s.resumedFrom, prev)
	return s.resumeErr
}

func (s *fakeSession) Start(cb Callbacks) {
	s.started = true
	if s.start != nil {
		s.start(cb)
	}
}

func (s *fakeSession) Abort() error {
	s.aborted = true
	return nil
}

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}
