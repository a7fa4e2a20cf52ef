package mangopay

import "context"

// Ping checks that the processor accepts our credentials.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.accessToken(ctx)
	return err
}

func (c *Client) Name() string { return "mangopay" }
