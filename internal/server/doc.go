// Package server implements the MCP (Model Context Protocol) server for the
// pixel art converter.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - pixelate_image: Convert an image file to pixel art using a preset and/or
//     explicit palette, dithering, metric and pre-adjustment settings
//   - quantize_pixels: Run a raw RGBA buffer through the conversion worker
//   - suggest_palette: Dominant colors of an image as a custom palette
//   - list_palettes: Built-in palettes and their colors
//   - list_presets: Named presets and the default settings
//
// # Image Caching
//
// Source images are decoded once per path and kept for the lifetime of the
// server, so repeated conversions with different settings skip the decode.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// quantize_pixels is the exception: it mirrors the worker message contract and
// reports conversion failures as a response with status "error".
//
// # Usage
//
//	w := worker.New(logger, 8, dither.Options{})
//	defer w.Close()
//	srv := server.New(logger, w, version)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
