package shared

import "github.com/IvanBrykalov/slist/list"

// cell tracks the views currently held on a node's contents.
// state > 0 counts read views, state == writing marks the single write view.
// It is a single-threaded reentrancy guard, not a lock.
type cell struct {
	state int
}

const writing = -1

func (c *cell) acquire() error {
	if c.state == writing {
		return list.ErrAliasing
	}
	c.state++
	return nil
}

func (c *cell) acquireMut() error {
	if c.state != 0 {
		return list.ErrAliasing
	}
	c.state = writing
	return nil
}

func (c *cell) release() {
	switch {
	case c.state == writing:
		c.state = 0
	case c.state > 0:
		c.state--
	}
}
