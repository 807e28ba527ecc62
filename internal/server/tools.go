package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var ditheringTypes = []string{"none", "ordered", "floyd"}

var colorMetrics = []string{"rgb", "cielab"}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name: "pixelate_image",
			Description: "Convert an image file into pixel art: adjust contrast and saturation, downscale to the pixel resolution, " +
				"quantize to a retro palette with optional dithering and scale back up with hard pixel edges. " +
				"Returns the result as base64-encoded PNG along with the colors used.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the source image file",
					},
					"preset": map[string]interface{}{
						"type":        "string",
						"description": "Optional preset supplying defaults for every other setting",
						"enum":        []string{"gameboy", "nes", "c64", "clean"},
					},
					"palette": map[string]interface{}{
						"type":        "string",
						"description": "Built-in palette name (see list_palettes), 'custom' to use custom_palette, " +
							"or 'fullColor' to posterize instead of mapping to a palette.",
					},
					"custom_palette": map[string]interface{}{
						"type":        "array",
						"description": "Up to 16 hex colors (#RRGGBB) used when palette is 'custom'",
						"items":       map[string]interface{}{"type": "string"},
					},
					"dithering_type": map[string]interface{}{
						"type":        "string",
						"description": "Dithering strategy",
						"enum":        ditheringTypes,
					},
					"color_metric": map[string]interface{}{
						"type":        "string",
						"description": "Color distance used to pick palette entries",
						"enum":        colorMetrics,
					},
					"pixel_resolution": map[string]interface{}{
						"type":        "integer",
						"description": "Working width in pixels (1-1024). Default 128",
					},
					"contrast": map[string]interface{}{
						"type":        "integer",
						"description": "Contrast percentage applied before quantizing (0-300). Default 100",
					},
					"saturation": map[string]interface{}{
						"type":        "integer",
						"description": "Saturation percentage applied before quantizing (0-300). Default 100",
					},
					"upscale": map[string]interface{}{
						"type":        "boolean",
						"description": "Scale the result back to the source size with nearest-neighbor sampling. Default true",
						"default":     true,
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to also write the result to; the extension picks the format",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "quantize_pixels",
			Description: "Quantize a raw RGBA pixel buffer directly. Takes the same request message the conversion worker accepts " +
				"and returns its response: status, the quantized buffer (base64) or an error message.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"imageData": map[string]interface{}{
						"type":        "string",
						"description": "Base64 encoded RGBA buffer of width*height*4 bytes",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Image width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Image height in pixels",
					},
					"settings": map[string]interface{}{
						"type":        "object",
						"description": "Quantization settings",
						"properties": map[string]interface{}{
							"palette": map[string]interface{}{
								"type": "string",
							},
							"customPalette": map[string]interface{}{
								"type":        "array",
								"description": "Colors as [r,g,b] arrays or #RRGGBB strings",
							},
							"ditheringType": map[string]interface{}{
								"type": "string",
								"enum": ditheringTypes,
							},
							"colorMetric": map[string]interface{}{
								"type": "string",
								"enum": colorMetrics,
							},
						},
						"required": []string{"palette", "ditheringType", "colorMetric"},
					},
				},
				"required": []string{"imageData", "width", "height", "settings"},
			},
		},
		{
			Name: "suggest_palette",
			Description: "Derive a custom palette from an image's dominant colors. " +
				"The returned palette can be passed to pixelate_image as custom_palette.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to suggest (1-16). Default 8",
						"default":     8,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "list_palettes",
			Description: "List the built-in palettes with their colors as hex strings.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "list_presets",
			Description: "List the named conversion presets and the settings each one applies.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
