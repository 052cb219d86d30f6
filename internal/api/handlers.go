package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/AbhiSharma69/revenue-rescue/internal/conversation"
	"github.com/AbhiSharma69/revenue-rescue/internal/dataset"
	"github.com/AbhiSharma69/revenue-rescue/internal/pipeline"
)

const maxUploadBytes = 32 << 20

// ChatRequest carries one conversational turn. csvData and chatHistory are
// optional; when present the client's copy is authoritative and replaces the
// server-side session state before the turn runs.
type ChatRequest struct {
	Message     string                 `json:"message"`
	CSVData     *dataset.Descriptor    `json:"csvData,omitempty"`
	ChatHistory []conversation.Message `json:"chatHistory,omitempty"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// ReportRequest carries the dataset a report should be generated from.
type ReportRequest struct {
	CSVData *dataset.Descriptor `json:"csvData,omitempty"`
}

// ConversationResponse is the persisted session view: the full message list
// plus the active dataset descriptor, if any.
type ConversationResponse struct {
	Messages []conversation.Message `json:"messages"`
	CSVData  *dataset.Descriptor    `json:"csvData,omitempty"`
}

// chat handles POST /chat.
func (s *Server) chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return
	}

	s.reconcile(req.CSVData, req.ChatHistory)

	resp, err := s.pipeline.Chat(r.Context(), s.state, req.Message)
	if err != nil {
		writeError(w, pipeline.StatusFor(err), pipeline.UserMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{Response: resp})
}

// generateReport handles POST /generate-report. A rejected model payload is
// replaced by the fallback report inside the pipeline, so this returns 200
// for everything except a missing dataset or a gateway failure.
func (s *Server) generateReport(w http.ResponseWriter, r *http.Request) {
	var req ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return
	}

	s.reconcile(req.CSVData, nil)

	rep, err := s.pipeline.GenerateReport(r.Context(), s.state)
	if err != nil {
		writeError(w, pipeline.StatusFor(err), pipeline.UserMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"report": rep})
}

// upload handles POST /upload with a multipart "file" field.
func (s *Server) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file upload")
		return
	}
	defer file.Close()

	desc, err := dataset.ParseCSV(header.Filename, file)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid CSV: %v", err))
		return
	}

	s.state.SetDataset(desc)
	s.persistDataset(desc)

	s.logger.Info("dataset uploaded", "file", desc.FileName, "rows", desc.RowCount, "columns", len(desc.Schema))
	writeJSON(w, http.StatusOK, map[string]any{"csvData": desc})
}

// getConversation handles GET /conversation.
func (s *Server) getConversation(w http.ResponseWriter, r *http.Request) {
	msgs, ds := s.state.Snapshot()
	writeJSON(w, http.StatusOK, ConversationResponse{Messages: msgs, CSVData: ds})
}

// clearConversation handles POST /conversation/clear. The dataset survives a
// clear; only the message history resets to the greeting.
func (s *Server) clearConversation(w http.ResponseWriter, r *http.Request) {
	s.state.Clear()

	msgs, ds := s.state.Snapshot()
	if s.store != nil {
		if err := s.store.SaveConversation(msgs); err != nil {
			s.logger.Warn("failed to persist cleared conversation", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, ConversationResponse{Messages: msgs, CSVData: ds})
}

// reconcile applies client-supplied state before a pipeline run. A non-nil
// field in the request body wins over whatever the server last saw.
func (s *Server) reconcile(d *dataset.Descriptor, history []conversation.Message) {
	if d != nil {
		s.state.SetDataset(d)
	}
	if history != nil {
		s.state.ReplaceHistory(history)
	}
}

func (s *Server) persistDataset(d *dataset.Descriptor) {
	if s.store == nil {
		return
	}
	if err := s.store.SaveDataset(d); err != nil {
		s.logger.Warn("failed to persist dataset", "error", err)
	}
}
