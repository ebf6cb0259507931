// Package loss provides the training loss.
package loss

// Loss is a loss function with derivative.
type Loss interface {
	// Forward computes the loss between predicted and true values.
	Forward(yPred, yTrue []float64) float64

	// BackwardInPlace computes the gradient of the loss w.r.t. prediction
	// and stores it in grad.
	BackwardInPlace(yPred, yTrue, grad []float64)
}

// HalfMSE is the mean of half squared errors: (1/n) * sum(0.5 * (y_true - y_pred)^2).
// The factor of one half makes the per-sample gradient the plain residual.
type HalfMSE struct{}

// Forward computes (1/n) * sum(0.5 * (y_true - y_pred)^2)
func (m HalfMSE) Forward(yPred, yTrue []float64) float64 {
	n := len(yPred)
	if n != len(yTrue) {
		panic("HalfMSE: prediction and target must have same length")
	}
	if n == 0 {
		return 0
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue[i] - yPred[i]
		sum += 0.5 * diff * diff
	}
	return sum / float64(n)
}

// BackwardInPlace computes dL/dy_pred = (y_pred - y_true) / n
func (m HalfMSE) BackwardInPlace(yPred, yTrue, grad []float64) {
	n := len(yPred)
	if n != len(yTrue) || n != len(grad) {
		panic("HalfMSE: slices must have same length")
	}

	inv := 1.0 / float64(n)
	for i := 0; i < n; i++ {
		grad[i] = (yPred[i] - yTrue[i]) * inv
	}
}
