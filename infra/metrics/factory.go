package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/haulplan/core/factory"
	"github.com/kilianp07/haulplan/infra/logger"
	"github.com/kilianp07/haulplan/infra/mqtt"
)

// init registers built-in sinks.
func init() {
	Sinks.MustRegister("nop", func(map[string]any) (Sink, error) {
		return NopSink{}, nil
	})

	Sinks.MustRegister("log", func(map[string]any) (Sink, error) {
		return NewLogSink(logger.New("search")), nil
	})

	Sinks.MustRegister("prometheus", func(map[string]any) (Sink, error) {
		return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
	})

	Sinks.MustRegister("influx", func(conf map[string]any) (Sink, error) {
		var c struct {
			URL    string `json:"url"`
			Token  string `json:"token"`
			Org    string `json:"org"`
			Bucket string `json:"bucket"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewInfluxSinkWithFallback(c.URL, c.Token, c.Org, c.Bucket), nil
	})

	Sinks.MustRegister("mqtt", func(conf map[string]any) (Sink, error) {
		var c struct {
			mqtt.Config `json:",squash"`
			Topic       string `json:"topic"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		pub, err := mqtt.NewPublisher(c.Config)
		if err != nil {
			return nil, err
		}
		return NewMQTTSink(pub, c.Topic), nil
	})
}
