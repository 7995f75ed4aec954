// internal/extract/extract.go
package extract

import (
	"context"
	"fmt"

	"faex-core/faidx"
	"faex-core/region"
	"faex-core/seq"

	"golang.org/x/sync/errgroup"
)

// Options controls extraction.
type Options struct {
	// Merge collapses keys to the bare reference name so repeated regions
	// for the same reference append into one growing buffer.
	Merge bool
	// Threads > 1 runs the per-region store queries concurrently. Result
	// order always follows the input region order.
	Threads int
}

// Extract queries the store for every region in input order and accumulates
// the results into a ResultSet. Reverse-flagged regions are
// reverse-complemented before accumulation.
func Extract(ctx context.Context, r *faidx.Reader, regions []region.Region, o Options) (*ResultSet, error) {
	seqs := make([][]byte, len(regions))
	if o.Threads > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(o.Threads)
		for i, reg := range regions {
			i, reg := i, reg
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				s, err := fetch(r, reg)
				if err != nil {
					return err
				}
				seqs[i] = s
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, reg := range regions {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			s, err := fetch(r, reg)
			if err != nil {
				return nil, err
			}
			seqs[i] = s
		}
	}

	// Fold in input order: first-seen key order and append order must
	// reflect the sequential input regardless of query concurrency.
	rs := NewResultSet()
	for i, reg := range regions {
		rs.Append(Key(reg, o.Merge), seqs[i])
	}
	return rs, nil
}

// Key computes the accumulation key for a region. Merge mode strips the
// coordinate suffix so same-reference regions collapse; otherwise each
// bounded region keys by its annotated identity.
func Key(reg region.Region, merge bool) string {
	if merge || reg.Whole() {
		return reg.Name
	}
	return fmt.Sprintf("%s:%d-%d", reg.Name, reg.Start, reg.End)
}

func fetch(r *faidx.Reader, reg region.Region) ([]byte, error) {
	var (
		s   []byte
		err error
	)
	if reg.Whole() {
		s, err = r.GetAll(reg.Name)
	} else {
		s, err = r.Get(reg.Name, reg.Start, reg.End)
	}
	if err != nil {
		return nil, err
	}
	if reg.ReverseComplement {
		s = seq.RevComp(s)
	}
	return s, nil
}
