package chttp

// Success is the default handler for non-error statuses: it returns the
// parsed data unchanged.
func Success(_ FromServer, data any) (any, error) {
	return data, nil
}

// Failure is the default handler for error statuses. It turns the exchange
// into a [*StatusError] carrying the status code and whatever the parser
// produced from the error body.
func Failure(fs FromServer, data any) (any, error) {
	return nil, &StatusError{Status: fs.Status(), Body: data}
}

// HandleResponse dispatches the parsed value to the handler the chain
// registers for the response status. Without an explicit registration,
// statuses below 400 go to [Success] and the rest to [Failure].
func (c *Config) HandleResponse(fs FromServer, parsed any) (any, error) {
	if h := c.Response.ActualHandler(fs.Status()); h != nil {
		return h(fs, parsed)
	}

	if fs.Status() < 400 {
		return Success(fs, parsed)
	}

	return Failure(fs, parsed)
}
