package nats

import "context"

// Producer publishes each topic as a subject of the same name.
type Producer struct {
	client *Client
}

func NewProducer(client *Client) *Producer {
	return &Producer{client: client}
}

func (p *Producer) Produce(ctx context.Context, topic string, value []byte, done func(error)) {
	js := p.client.JetStream()
	if js == nil {
		done(p.client.nc.Publish(topic, value))
		return
	}

	ack, err := js.PublishAsync(topic, value)
	if err != nil {
		done(err)
		return
	}
	go func() {
		select {
		case <-ack.Ok():
			done(nil)
		case err := <-ack.Err():
			done(err)
		case <-ctx.Done():
			done(ctx.Err())
		}
	}()
}

func (p *Producer) Close() {
	if err := p.client.Close(); err != nil {
		p.client.logger.Warn("nats close", "error", err)
	}
}
