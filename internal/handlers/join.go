package handlers

import (
	"golang.org/x/sync/errgroup"
)

// settle runs primary and check concurrently and waits for both to finish.
// A failed check wins over whatever primary returned, so a missing parent
// is reported as such even when primary failed for a different reason.
func settle(primary, check func() error) error {
	var primaryErr, checkErr error

	var g errgroup.Group
	g.Go(func() error {
		primaryErr = primary()
		return nil
	})
	g.Go(func() error {
		checkErr = check()
		return nil
	})
	_ = g.Wait()

	if checkErr != nil {
		return checkErr
	}
	return primaryErr
}
