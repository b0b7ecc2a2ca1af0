package news

import "context"

// Validator confirms that a ticker exists before news is requested for it.
type Validator interface {
	Validate(ctx context.Context, ticker string) error
}

type validatedSource struct {
	Source
	validator Validator
}

// Validated wraps src so that every query first checks the ticker with v.
// A validation failure is returned as the query error, so Fetch reports it
// as a SourceError like any other provider failure.
func Validated(src Source, v Validator) Source {
	if v == nil {
		return src
	}
	return &validatedSource{Source: src, validator: v}
}

// Headlines implements Source
func (s *validatedSource) Headlines(ctx context.Context, ticker string, count int) ([]Headline, error) {
	if err := s.validator.Validate(ctx, ticker); err != nil {
		return nil, err
	}
	return s.Source.Headlines(ctx, ticker, count)
}
