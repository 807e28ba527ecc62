package server

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ironsheep/pixelart-mcp/internal/imaging"
	"github.com/ironsheep/pixelart-mcp/internal/palette"
	"github.com/ironsheep/pixelart-mcp/internal/pixelate"
	"github.com/ironsheep/pixelart-mcp/internal/worker"
)

// toolTimeout bounds how long a tool call waits for the worker.
const toolTimeout = 2 * time.Minute

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "pixelate_image", "list_palettes").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "pixelate_image":
		return s.handlePixelateImage(args)
	case "quantize_pixels":
		return s.handleQuantizePixels(args)
	case "suggest_palette":
		return s.handleSuggestPalette(args)
	case "list_palettes":
		return s.handleListPalettes()
	case "list_presets":
		return s.handleListPresets()
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Conversion Handlers ===

// pixelateImageArgs holds the pixelate_image arguments. Pointer fields are
// optional overrides on top of the chosen preset.
type pixelateImageArgs struct {
	Path            string   `json:"path"`
	Preset          string   `json:"preset"`
	Palette         *string  `json:"palette"`
	CustomPalette   []string `json:"custom_palette"`
	DitheringType   *string  `json:"dithering_type"`
	ColorMetric     *string  `json:"color_metric"`
	PixelResolution *int     `json:"pixel_resolution"`
	Contrast        *int     `json:"contrast"`
	Saturation      *int     `json:"saturation"`
	Upscale         *bool    `json:"upscale"`
	OutputPath      string   `json:"output_path"`
}

// PixelateResult is the pixelate_image tool result.
type PixelateResult struct {
	imaging.EncodedImage

	WorkingWidth  int                  `json:"working_width"`
	WorkingHeight int                  `json:"working_height"`
	Settings      pixelate.Settings    `json:"settings"`
	Posterized    bool                 `json:"posterized"`
	ColorsUsed    []imaging.ColorUsage `json:"colors_used"`
	OutputPath    string               `json:"output_path,omitempty"`
}

func (a *pixelateImageArgs) options() (pixelate.Options, error) {
	settings, err := pixelate.Preset(a.Preset)
	if err != nil {
		return pixelate.Options{}, err
	}
	if a.Palette != nil {
		settings.Palette = *a.Palette
	}
	if a.DitheringType != nil {
		settings.DitheringType = *a.DitheringType
	}
	if a.ColorMetric != nil {
		settings.ColorMetric = *a.ColorMetric
	}
	if a.PixelResolution != nil {
		settings.PixelResolution = *a.PixelResolution
	}
	if a.Contrast != nil {
		settings.Contrast = *a.Contrast
	}
	if a.Saturation != nil {
		settings.Saturation = *a.Saturation
	}

	opts := pixelate.Options{Settings: settings, Upscale: true}
	if a.Upscale != nil {
		opts.Upscale = *a.Upscale
	}
	if len(a.CustomPalette) > 0 {
		custom, err := palette.ParseHexList(a.CustomPalette)
		if err != nil {
			return pixelate.Options{}, fmt.Errorf("custom_palette: %w", err)
		}
		opts.CustomPalette = custom
		if a.Palette == nil {
			opts.Palette = palette.Custom
		}
	}
	return opts, nil
}

func (s *Server) handlePixelateImage(args json.RawMessage) (interface{}, error) {
	var a pixelateImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	opts, err := a.options()
	if err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), toolTimeout)
	defer cancel()

	start := time.Now()
	result, err := pixelate.Run(ctx, s.worker, img, opts)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("pixelated image",
		"path", a.Path,
		"palette", opts.Palette,
		"dithering", opts.DitheringType,
		"working_width", result.WorkingWidth,
		"elapsed", time.Since(start))

	if a.OutputPath != "" {
		if err := imaging.Save(result.Image, a.OutputPath); err != nil {
			return nil, err
		}
	}

	encoded, err := imaging.EncodePNG(result.Image)
	if err != nil {
		return nil, err
	}

	return &PixelateResult{
		EncodedImage:  *encoded,
		WorkingWidth:  result.WorkingWidth,
		WorkingHeight: result.WorkingHeight,
		Settings:      opts.Settings,
		Posterized:    result.Posterized,
		ColorsUsed:    result.Usage,
		OutputPath:    a.OutputPath,
	}, nil
}

// handleQuantizePixels runs a raw worker request. Conversion failures are
// reported in the response message rather than as tool errors.
func (s *Server) handleQuantizePixels(args json.RawMessage) (interface{}, error) {
	var req worker.Request
	if err := json.Unmarshal(args, &req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), toolTimeout)
	defer cancel()

	resp, err := s.worker.Convert(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// === Catalog Handlers ===

type suggestPaletteArgs struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

func (s *Server) handleSuggestPalette(args json.RawMessage) (interface{}, error) {
	var a suggestPaletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 8
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SuggestPalette(img, a.Count)
}

// PaletteInfo describes one built-in palette.
type PaletteInfo struct {
	Name   string   `json:"name"`
	Size   int      `json:"size"`
	Colors []string `json:"colors"`
}

func (s *Server) handleListPalettes() (interface{}, error) {
	names := palette.Names()
	infos := make([]PaletteInfo, 0, len(names))
	for _, name := range names {
		pal, _ := palette.Lookup(name)
		infos = append(infos, PaletteInfo{
			Name:   name,
			Size:   len(pal),
			Colors: pal.HexList(),
		})
	}
	return map[string]interface{}{
		"palettes":          infos,
		"full_color":        palette.FullColor,
		"custom":            palette.Custom,
		"max_custom_colors": palette.MaxCustomColors,
	}, nil
}

func (s *Server) handleListPresets() (interface{}, error) {
	return map[string]interface{}{
		"presets":  pixelate.Presets(),
		"defaults": pixelate.Defaults,
	}, nil
}
