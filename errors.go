package shapes

import "errors"

var (
	//Empty or even-length kernel, or one holding NaN/Inf weights
	ErrInvalidKernel = errors.New("shapes: kernel must have an odd, non-zero number of finite weights")
	//Negative stride or non-positive grid resolution
	ErrInvalidGeometry = errors.New("shapes: stride must be >= 0 and resolution > 0")
	//Template name or value outside the four known templates
	ErrUnknownTemplate = errors.New("shapes: unknown template")
	//Configuration that fails validation
	ErrInvalidConfig = errors.New("shapes: invalid configuration")
)
