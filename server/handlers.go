package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/umputun/delta/pkg/assistant"
	"github.com/umputun/delta/pkg/email"
)

// commandRequest is one typed or transcribed utterance
type commandRequest struct {
	Text string `json:"text"`
}

// commandHandler routes an utterance through the assistant and returns the reply
func (s *Server) commandHandler(w http.ResponseWriter, r *http.Request) {
	var req commandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, errors.New("invalid request body"), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		RenderError(w, r, errors.New("text is required"), http.StatusBadRequest)
		return
	}

	reply := s.assistant.Respond(r.Context(), req.Text)
	RenderJSON(w, r, http.StatusOK, reply)
}

// historyHandler returns the recent transcript
func (s *Server) historyHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := s.assistant.Transcript(r.Context())
	if err != nil {
		RenderError(w, r, errors.New("failed to load history"), http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"entries": entries, "greeting": s.assistant.Greeting()})
}

// clearHistoryHandler wipes the transcript
func (s *Server) clearHistoryHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.assistant.ClearTranscript(r.Context()); err != nil {
		RenderError(w, r, errors.New("failed to clear history"), http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "cleared"})
}

// preferencesHandler returns all stored preferences
func (s *Server) preferencesHandler(w http.ResponseWriter, r *http.Request) {
	RenderJSON(w, r, http.StatusOK, s.prefs.All())
}

// setPreferenceHandler stores one preference value
func (s *Server) setPreferenceHandler(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if key == "" {
		RenderError(w, r, errors.New("key is required"), http.StatusBadRequest)
		return
	}

	var req struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, errors.New("invalid request body"), http.StatusBadRequest)
		return
	}

	if err := s.prefs.Set(key, req.Value); err != nil {
		log.Printf("[WARN] failed to save preference %s: %v", key, err)
		RenderError(w, r, errors.New("failed to save preference"), http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{key: req.Value})
}

// remindersHandler lists pending reminders
func (s *Server) remindersHandler(w http.ResponseWriter, r *http.Request) {
	RenderJSON(w, r, http.StatusOK, map[string]any{"reminders": s.reminders.List()})
}

// emailHandler sends a message composed in the chat page form
func (s *Server) emailHandler(w http.ResponseWriter, r *http.Request) {
	var msg email.Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		RenderError(w, r, errors.New("invalid request body"), http.StatusBadRequest)
		return
	}

	if err := s.assistant.SendEmail(r.Context(), msg); err != nil {
		var ncErr *assistant.NotConfiguredError
		if errors.As(err, &ncErr) {
			RenderError(w, r, err, http.StatusNotImplemented)
			return
		}
		log.Printf("[WARN] failed to send email to %s: %v", msg.To, err)
		RenderError(w, r, errors.New("failed to send email"), http.StatusBadGateway)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "sent"})
}

// transcribeHandler accepts a multipart audio upload and returns its text
func (s *Server) transcribeHandler(w http.ResponseWriter, r *http.Request) {
	if s.voice == nil {
		RenderError(w, r, errors.New("voice is not configured"), http.StatusNotImplemented)
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		RenderError(w, r, errors.New("audio file is required"), http.StatusBadRequest)
		return
	}
	defer file.Close()

	text, err := s.voice.Transcribe(r.Context(), file, header.Filename)
	if err != nil {
		log.Printf("[WARN] transcription failed: %v", err)
		RenderError(w, r, errors.New("transcription failed"), http.StatusBadGateway)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"text": text})
}

// speakHandler synthesizes speech for the given text
func (s *Server) speakHandler(w http.ResponseWriter, r *http.Request) {
	if s.voice == nil {
		RenderError(w, r, errors.New("voice is not configured"), http.StatusNotImplemented)
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		RenderError(w, r, errors.New("text is required"), http.StatusBadRequest)
		return
	}

	audio, err := s.voice.Speak(r.Context(), req.Text)
	if err != nil {
		log.Printf("[WARN] speech synthesis failed: %v", err)
		RenderError(w, r, errors.New("speech synthesis failed"), http.StatusBadGateway)
		return
	}
	defer audio.Close()

	w.Header().Set("Content-Type", "audio/mpeg")
	if _, err := io.Copy(w, audio); err != nil {
		log.Printf("[WARN] failed to stream audio: %v", err)
	}
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"voice":   s.voice != nil,
		"time":    time.Now().UTC(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// indexHandler serves the embedded chat page
func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Greeting string
		Version  string
		Voice    bool
	}{
		Greeting: s.assistant.Greeting(),
		Version:  s.version,
		Voice:    s.voice != nil,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Printf("[ERROR] failed to render chat page: %v", err)
	}
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
