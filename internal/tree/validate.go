package tree

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"scaffold/internal/safety"
)

// Validate checks every name in r and returns all problems at once.
// Each error is prefixed with the slash path of the offending node.
func Validate(r Root) error {
	var result *multierror.Error
	if err := safety.ValidateName(r.Name); err != nil {
		result = multierror.Append(result, fmt.Errorf("root: %w", err))
	}
	_ = r.Walk(func(parents []string, n Node) error {
		if err := safety.ValidateName(n.Name); err != nil {
			where := strings.Join(append(append([]string{r.Name}, parents...), n.Name), "/")
			result = multierror.Append(result, fmt.Errorf("%s %s: %w", n.Kind, where, err))
		}
		return nil
	})
	return result.ErrorOrNil()
}
