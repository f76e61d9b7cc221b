package util

// Progress aggregates completion and error reporting from a pool of
// concurrent jobs. Errors are warnings, not fatal: a barcode with no hits
// in one genome must not sink the rest of the run.
type Progress struct {
	errs chan error
	done chan struct{}
}

func NewProgress(total int) Progress {
	p := Progress{make(chan error), make(chan struct{})}
	go func() {
		completed := 0
		errorCount := 0
		for err := range p.errs {
			if err == nil {
				completed += 1
			} else {
				errorCount += 1
				Warnf("%s", err)
			}

			ratio := 100.0 * (float64(completed) / float64(total))
			Verbosef("%d of %d jobs complete (%0.2f%% done, %d errors)",
				completed, total, ratio, errorCount)
		}
		p.done <- struct{}{}
	}()
	return p
}

func (p Progress) JobDone(err error) {
	p.errs <- err
}

func (p Progress) Close() {
	close(p.errs)
	<-p.done
}
