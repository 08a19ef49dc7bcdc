package pages

import (
	"bikedemand/forms"
	"bikedemand/utils"
	"sync"
)

// Page holds the prediction currently on display. A nil value means none yet.
type Page struct {
	mu         sync.RWMutex
	prediction *float64
}

// New creates a page with nothing displayed.
func New() *Page {
	return &Page{}
}

// SetPrediction replaces the displayed prediction.
func (p *Page) SetPrediction(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prediction = &v
}

// Prediction returns the displayed prediction, if any.
func (p *Page) Prediction() (float64, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.prediction == nil {
		return 0, false
	}
	return *p.prediction, true
}

// Result returns the result card contents, or nil while there is no prediction.
func (p *Page) Result() *utils.DemandDisplay {
	v, ok := p.Prediction()
	if !ok {
		return nil
	}
	d := utils.Display(v)
	return &d
}

// Session is one visitor's form wired to their page.
type Session struct {
	Form *forms.BikeForm
	Page *Page
}

// NewSession composes a fresh form and page around predictor.
func NewSession(predictor forms.Predictor) *Session {
	return &Session{
		Form: forms.NewBikeForm(predictor),
		Page: New(),
	}
}

// Submit sends the form and feeds a successful forecast into the page.
func (s *Session) Submit() forms.Notice {
	return s.Form.Submit(s.Page.SetPrediction)
}
