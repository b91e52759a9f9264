package member

import (
	"context"
	"fmt"
)

type BulkResult struct {
	Saved  int      `json:"saved"`
	Errors []string `json:"errors"`
}

// BulkRegister imports queued registrations best-effort: each record is
// validated and inserted independently, and per-record failures never abort
// the batch.
type BulkRegister struct {
	register *Register
}

func NewBulkRegister(register *Register) *BulkRegister {
	return &BulkRegister{register: register}
}

func (uc *BulkRegister) Execute(ctx context.Context, records []RegisterInput) BulkResult {
	result := BulkResult{Errors: []string{}}

	for i, in := range records {
		if _, err := uc.register.Execute(ctx, in); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Record %d: %s", i+1, err.Error()))
			continue
		}
		result.Saved++
	}

	return result
}
