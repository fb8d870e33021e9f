package parse

import (
	"fmt"
	"regexp"
	"strings"
)

var topicRe = regexp.MustCompile(`^(.+)/sensors/([^/+#]+)/readings$`)

// ReadingTopic is the MQTT topic filter sensors publish readings on.
func ReadingTopic(prefix string) string {
	return strings.TrimSuffix(prefix, "/") + "/sensors/+/readings"
}

// ParseReadingTopic extracts the sensor id from a topic of the form
// <prefix>/sensors/<sensorID>/readings.
func ParseReadingTopic(prefix, topic string) (string, error) {
	m := topicRe.FindStringSubmatch(strings.TrimSpace(topic))
	if m == nil || m[1] != strings.TrimSuffix(prefix, "/") {
		return "", fmt.Errorf("unexpected topic: %q", topic)
	}
	return m[2], nil
}
