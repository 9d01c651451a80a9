package surrogate

import "errors"

var (
	// ErrNotReady indicates prediction was requested before a trained
	// model and normalization stats were published.
	ErrNotReady = errors.New("surrogate: model not trained")

	// ErrTrainingInFlight indicates a second training run was requested
	// while one is already running; the request is a no-op.
	ErrTrainingInFlight = errors.New("surrogate: training already in flight")

	// ErrEmptyDataset indicates training was requested with no samples.
	ErrEmptyDataset = errors.New("surrogate: empty dataset")
)
