package navbar

import (
	"errors"
	"strconv"
)

// ErrSkipChildren can be returned by a WalkFunc to skip a group's children.
var ErrSkipChildren = errors.New("skip children")

// WalkFunc is called for every entry in depth-first pre-order.
type WalkFunc func(location string, e Entry, depth int) error

// Walk traverses n. Returning ErrSkipChildren from fn for a group skips its
// children; any other error stops the walk and is returned.
func Walk(n Navbar, fn WalkFunc) error {
	return walk(n, "", 0, fn)
}

func walk(n Navbar, parentLoc string, depth int, fn WalkFunc) error {
	for i, e := range n {
		loc := parentLoc + "[" + strconv.Itoa(i) + "]"
		err := fn(loc, e, depth)
		if errors.Is(err, ErrSkipChildren) {
			continue
		}
		if err != nil {
			return err
		}
		if g, ok := e.(Group); ok {
			if err := walk(g.Children, loc+".children", depth+1, fn); err != nil {
				return err
			}
		}
	}
	return nil
}
