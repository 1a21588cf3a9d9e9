// Package server exposes the converter over HTTP for the browser demo.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/btouchard/pythva/internal/converter"
)

// Server serves the demo page and the conversion API. One Converter is
// shared across requests; each request renders in its own context.
type Server struct {
	conv *converter.Converter
	log  *slog.Logger
	mux  *http.ServeMux
}

// New builds a server around a converter. A nil logger falls back to
// slog.Default().
func New(conv *converter.Converter, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		conv: conv,
		log:  log,
		mux:  http.NewServeMux(),
	}
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/convert", s.handleConvert)
	s.mux.HandleFunc("/examples", s.handleExamples)
	s.mux.HandleFunc("/config", s.handleConfig)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("demo server starting", "addr", addr)
	return http.ListenAndServe(addr, s)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexPage))
}

type convertRequest struct {
	Code     string `json:"code"`
	Enhanced bool   `json:"enhanced"`
}

type convertResponse struct {
	Success       bool   `json:"success"`
	ConvertedCode string `json:"converted_code,omitempty"`
	Errors        int    `json:"errors"`
	Warnings      int    `json:"warnings"`
	Error         string `json:"error,omitempty"`
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, convertResponse{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		writeJSON(w, http.StatusOK, convertResponse{
			Success: false,
			Error:   "please provide Python code",
		})
		return
	}

	res := s.conv.Convert(req.Code, converter.Options{Enhanced: req.Enhanced})
	writeJSON(w, http.StatusOK, convertResponse{
		Success:       true,
		ConvertedCode: res.Output,
		Errors:        len(res.Errors),
		Warnings:      len(res.Warnings),
	})
}

// Examples returns the sample programs offered by the demo page.
func Examples() map[string]string {
	return map[string]string{
		"basic_class": `class Calculator:
    def __init__(self, initial_value=0):
        self.result = initial_value

    def add(self, a, b):
        return a + b

    def calculate(self):
        return self.result * 2`,

		"data_processor": `from typing import List

class DataProcessor:
    def __init__(self, name: str):
        self.name = name

    def process_data(self) -> int:
        return sum(self.data)

    def add_item(self, item: int):
        self.data.append(item)`,

		"advanced": `class AdvancedCalculator:
    def __init__(self):
        self.history = []

    def power(self, base, exponent):
        result = base ** exponent
        self.history.append(f"{base}^{exponent} = {result}")
        return result

    def divide(self, a, b):
        if b == 0:
            return None
        return a / b`,
	}
}

func (s *Server) handleExamples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Examples())
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	cfg := s.conv.Config()
	writeJSON(w, http.StatusOK, map[string]any{
		"output_style":            cfg.OutputStyle,
		"add_package_declaration": cfg.AddPackageDeclaration,
		"package_name":            cfg.PackageName,
		"default_type":            cfg.DefaultType,
		"indent_size":             cfg.IndentSize,
		"debug_mode":              cfg.DebugMode,
	})
}
