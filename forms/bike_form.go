package forms

import (
	"bikedemand/models"
	"bikedemand/utils"
	"log"
	"sync"
)

// Notification messages shown after a submission.
const (
	SuccessMessage = "Prediction generated successfully!"
	FailureMessage = "Failed to get prediction. Please check the console for details."
)

// NoticeKind classifies a Notice.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
	// NoticeSuperseded marks a submission whose response arrived after a newer one started.
	NoticeSuperseded NoticeKind = "superseded"
)

// Notice is the transient message produced by a submission.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

// Predictor turns a form input into a demand forecast.
type Predictor interface {
	Predict(input models.PredictionInput) (float64, error)
}

// BikeForm holds the prediction form state and submits it.
// It is safe for concurrent use.
type BikeForm struct {
	predictor Predictor

	mu      sync.Mutex
	input   models.PredictionInput
	loading bool
	seq     uint64
}

// NewBikeForm creates a form with the default field values.
func NewBikeForm(p Predictor) *BikeForm {
	return &BikeForm{
		predictor: p,
		input:     models.DefaultPredictionInput(),
	}
}

// Update parses raw and stores it in field. Unparsable input is stored as 0.
func (f *BikeForm) Update(field, raw string) error {
	return f.Set(field, utils.ParseNumber(raw))
}

// Set stores an already parsed value in field. No range clamping is applied.
func (f *BikeForm) Set(field string, value float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.input.Set(field, value)
}

// Input returns a snapshot of the current field values.
func (f *BikeForm) Input() models.PredictionInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.input
}

// Loading reports whether the latest submission is still waiting for a response.
func (f *BikeForm) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// Submit sends the current input to the predictor.
//
// On success onPrediction receives the forecast. On any failure it is not
// called and the detail is only logged. Overlapping submissions are allowed;
// only the most recently started one may call onPrediction or clear the
// loading flag. onPrediction runs with the form locked and must not call
// back into the form.
func (f *BikeForm) Submit(onPrediction func(float64)) Notice {
	f.mu.Lock()
	f.seq++
	token := f.seq
	f.loading = true
	input := f.input
	f.mu.Unlock()

	log.Printf("Sending data to prediction API: %+v", input)
	prediction, err := f.predictor.Predict(input)

	f.mu.Lock()
	defer f.mu.Unlock()

	if token != f.seq {
		log.Printf("Discarding stale prediction response (submission %d, latest %d, err: %v)", token, f.seq, err)
		return Notice{Kind: NoticeSuperseded}
	}
	f.loading = false

	if err != nil {
		log.Printf("Prediction error: %v", err)
		return Notice{Kind: NoticeError, Message: FailureMessage}
	}

	log.Printf("Prediction API response: %v", prediction)
	if onPrediction != nil {
		onPrediction(prediction)
	}
	return Notice{Kind: NoticeSuccess, Message: SuccessMessage}
}
