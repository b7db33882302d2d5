package flagvalue

import (
	"fmt"
	"strings"

	"braces.dev/errtrace"
)

// List is a flag.Getter that accepts a flag any number of times
// and collects the values in order.
type List[T any, PT Getter[T]] []T

// ListOf adapts a slice of values whose pointers implement flag.Getter
// to accept a flag any number of times.
//
//	flag.Var(flagvalue.ListOf(&opts), "O", ...)
func ListOf[T any, PT Getter[T]](vs *[]T) *List[T, PT] {
	return (*List[T, PT])(vs)
}

// Get returns the values recorded so far.
func (lv *List[T, PT]) Get() any { return []T(*lv) }

// String returns the values in this list separated by commas.
func (lv *List[T, PT]) String() string {
	var sb strings.Builder
	for i := range *lv {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(PT(&(*lv)[i]).String())
	}
	return sb.String()
}

// Set parses one more value and appends it to the list.
func (lv *List[T, PT]) Set(s string) error {
	var v T
	if err := PT(&v).Set(s); err != nil {
		return errtrace.Wrap(fmt.Errorf("item %d: %w", len(*lv)+1, err))
	}
	*lv = append(*lv, v)
	return nil
}
