package types

// DecideInput carries the raw comma-delimited lists of one decision request.
type DecideInput struct {
	FirstAdopterItems  string
	SecondAdopterItems string
	Animals            string
}
