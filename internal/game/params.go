package game

// Default tuning values
const (
	DefaultPlayerSpeed         = 5.0
	DefaultBallHorizontalSpeed = 3.0
	DefaultSpeedTransferRate   = 0.8
	DefaultTopMargin           = 100.0
	DefaultSideMargin          = 100.0
	DefaultPaddleWidth         = 10.0
	DefaultPaddleHeight        = 40.0
	DefaultPaddleX             = 400.0
)

// Params holds the tunable physics and geometry of a match.
// PaddleWidth doubles as the side length of the (square) ball.
type Params struct {
	PlayerSpeed         float64
	BallHorizontalSpeed float64
	SpeedTransferRate   float64
	TopMargin           float64
	SideMargin          float64
	PaddleWidth         float64
	PaddleHeight        float64
	PaddleX             float64
}

// DefaultParams returns the stock tuning
func DefaultParams() Params {
	return Params{
		PlayerSpeed:         DefaultPlayerSpeed,
		BallHorizontalSpeed: DefaultBallHorizontalSpeed,
		SpeedTransferRate:   DefaultSpeedTransferRate,
		TopMargin:           DefaultTopMargin,
		SideMargin:          DefaultSideMargin,
		PaddleWidth:         DefaultPaddleWidth,
		PaddleHeight:        DefaultPaddleHeight,
		PaddleX:             DefaultPaddleX,
	}
}
