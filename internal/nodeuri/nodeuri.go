// Package nodeuri encodes a node into a shareable configuration URI.
// Rendering the URI into a QR image is left to whatever the user pastes it
// into; this package is the pure function contract only.
package nodeuri

import (
	"encoding/base64"
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/nextboard/boardcli/internal/client/models"
)

// Encode returns "<node_type>://<base64(JSON)>" where the JSON merges the
// node's name, type, host and port with its opaque protocol config. Protocol
// config keys win over the base fields, matching the server's precedence.
func Encode(n models.Node) string {
	cfg := map[string]any{
		"name": n.Name,
		"type": n.NodeType,
		"host": n.Host,
		"port": n.Port,
	}

	if len(n.ProtocolConfig) > 0 {
		gjson.ParseBytes(n.ProtocolConfig).ForEach(func(key, value gjson.Result) bool {
			cfg[key.String()] = value.Value()
			return true
		})
	}

	// Map keys marshal in sorted order, so the encoding is deterministic.
	payload, err := json.Marshal(cfg)
	if err != nil {
		return ""
	}
	return n.NodeType + "://" + base64.StdEncoding.EncodeToString(payload)
}
