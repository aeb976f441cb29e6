package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dialogics/diagnostics-backend/internal/catalog"
	"github.com/dialogics/diagnostics-backend/internal/logger"
	"github.com/dialogics/diagnostics-backend/internal/repos"
	"github.com/dialogics/diagnostics-backend/internal/sessions"
	"github.com/dialogics/diagnostics-backend/internal/types"
)

const chatGreeting = "Olá! Eu sou a IA da Cuidatoria, sua consultora especializada em organizações da sociedade civil. 🌟\n\nVou te ajudar a fazer um diagnóstico completo da maturidade organizacional da sua OSC. Será uma conversa bem tranquila, dividida em 7 módulos. Vamos começar?"

const chatCompletion = "🎉 **Parabéns!** Você completou todo o diagnóstico!\n\nAgora vou processar suas respostas e gerar um relatório completo com sua classificação de maturidade organizacional, pontos fortes, áreas de melhoria e recomendações personalizadas.\n\nIsso pode levar alguns minutos. Vou te avisar quando estiver pronto!"

// chatAnswer keeps both renditions of one answer: the literal text and, for
// choice questions that matched an option, its ordinal value.
type chatAnswer struct {
	Text  string   `json:"text"`
	Value *float64 `json:"value,omitempty"`
}

type chatState struct {
	OrganizationID uuid.UUID             `json:"organization_id"`
	ModuleIndex    int                   `json:"module_index"`
	QuestionIndex  int                   `json:"question_index"`
	Completed      bool                  `json:"completed"`
	Answers        map[string]chatAnswer `json:"answers"`
	CreatedAt      time.Time             `json:"created_at"`
}

// ChatMessage is one emitted turn. DelayMS is a pacing hint for the client;
// the server never sleeps.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	DelayMS int    `json:"delay_ms,omitempty"`
}

// ChatReply is what every chat operation returns: the new turns, the overall
// progress, and the pipeline result once the conversation has completed.
type ChatReply struct {
	SessionID string        `json:"session_id"`
	Messages  []ChatMessage `json:"messages"`
	Progress  float64       `json:"progress"`
	Completed bool          `json:"completed"`
	Result    *ProcessResult `json:"result,omitempty"`
}

// ChatFlowService drives the conversational intake: one question per turn,
// module by module, submission as a side effect of the final answer.
type ChatFlowService interface {
	Start(ctx context.Context, orgID uuid.UUID) (*ChatReply, error)
	Get(ctx context.Context, sessionID string) (*ChatReply, error)
	HandleMessage(ctx context.Context, sessionID, content string) (*ChatReply, error)
}

type chatFlowService struct {
	log          *logger.Logger
	db           *gorm.DB
	store        sessions.Store
	orgRepo      repos.OrganizationRepo
	diagRepo     repos.DiagnosticRepo
	responseRepo repos.DiagnosticResponseRepo
	pipeline     DiagnosticService
	modules      []catalog.Module
}

func NewChatFlowService(
	log *logger.Logger,
	db *gorm.DB,
	store sessions.Store,
	orgRepo repos.OrganizationRepo,
	diagRepo repos.DiagnosticRepo,
	responseRepo repos.DiagnosticResponseRepo,
	pipeline DiagnosticService,
) ChatFlowService {
	return &chatFlowService{
		log:          log.With("service", "ChatFlowService"),
		db:           db,
		store:        store,
		orgRepo:      orgRepo,
		diagRepo:     diagRepo,
		responseRepo: responseRepo,
		pipeline:     pipeline,
		modules:      catalog.Modules(),
	}
}

func (cs *chatFlowService) Start(ctx context.Context, orgID uuid.UUID) (*ChatReply, error) {
	if _, err := cs.orgRepo.GetByID(ctx, nil, orgID); err != nil {
		return nil, fmt.Errorf("load organization: %w", err)
	}

	state := chatState{
		OrganizationID: orgID,
		Answers:        map[string]chatAnswer{},
		CreatedAt:      time.Now().UTC(),
	}
	skipEmptyModules(cs.modules, &state)

	messages := []ChatMessage{{Role: "bot", Content: chatGreeting}}
	messages = append(messages, questionMessages(cs.modules, state, 2000)...)

	sessionID := uuid.NewString()
	if err := cs.save(ctx, sessionID, state); err != nil {
		return nil, err
	}

	cs.log.Info("Chat session started", "session_id", sessionID, "organization_id", orgID)
	return &ChatReply{
		SessionID: sessionID,
		Messages:  messages,
		Progress:  progress(cs.modules, state),
	}, nil
}

func (cs *chatFlowService) Get(ctx context.Context, sessionID string) (*ChatReply, error) {
	state, err := cs.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	reply := &ChatReply{
		SessionID: sessionID,
		Progress:  progress(cs.modules, *state),
		Completed: state.Completed,
	}
	if !state.Completed {
		reply.Messages = questionMessages(cs.modules, *state, 0)
	}
	return reply, nil
}

// HandleMessage records the answer to the pending question and advances the
// conversation. Answering the final question completes the session: the
// diagnostic is persisted and processed before the reply returns.
func (cs *chatFlowService) HandleMessage(ctx context.Context, sessionID, content string) (*ChatReply, error) {
	state, err := cs.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.Completed {
		return nil, ErrSessionCompleted
	}

	module := cs.modules[state.ModuleIndex]
	question := module.Questions[state.QuestionIndex]

	// Last write wins: re-answering the pending question just replaces it.
	state.Answers[question.Key] = parseChatAnswer(question, content)

	messages := []ChatMessage{{Role: "user", Content: content}}

	state.QuestionIndex++
	if state.QuestionIndex >= len(module.Questions) {
		state.ModuleIndex++
		state.QuestionIndex = 0
		skipEmptyModules(cs.modules, state)
	}

	if state.ModuleIndex >= len(cs.modules) {
		state.Completed = true
		messages = append(messages, ChatMessage{Role: "bot", Content: chatCompletion, DelayMS: 1000})

		diag, err := cs.persist(ctx, state)
		if err != nil {
			// Nothing was committed; replaying the final message retries
			// the submission.
			return nil, err
		}
		// Retire before processing: once the diagnostic row exists a
		// replay of the final message must never create a second one.
		cs.retire(ctx, sessionID, state)

		result, err := cs.pipeline.Process(ctx, diag.ID)
		if err != nil {
			return nil, fmt.Errorf("process diagnostic %s: %w", diag.ID, err)
		}
		return &ChatReply{
			SessionID: sessionID,
			Messages:  messages,
			Progress:  100,
			Completed: true,
			Result:    result,
		}, nil
	}

	messages = append(messages, questionMessages(cs.modules, *state, 1000)...)
	if err := cs.save(ctx, sessionID, *state); err != nil {
		return nil, err
	}
	return &ChatReply{
		SessionID: sessionID,
		Messages:  messages,
		Progress:  progress(cs.modules, *state),
	}, nil
}

// retire keeps the completed state around briefly so a late message gets a
// clear rejection instead of a not-found.
func (cs *chatFlowService) retire(ctx context.Context, sessionID string, state *chatState) {
	raw, err := json.Marshal(state)
	if err != nil {
		return
	}
	if err := cs.store.Put(ctx, chatKey(sessionID), raw, 10*time.Minute); err != nil {
		cs.log.Warn("Failed to retire chat session", "session_id", sessionID, "error", err)
	}
}

func (cs *chatFlowService) persist(ctx context.Context, state *chatState) (*types.Diagnostic, error) {
	diag := &types.Diagnostic{
		OrganizationID: state.OrganizationID,
		Title:          "Diagnóstico Organizacional",
		Status:         types.DiagnosticStatusInProgress,
	}

	err := inTransaction(cs.db, func(tx *gorm.DB) error {
		if _, err := cs.diagRepo.Create(ctx, tx, diag); err != nil {
			return fmt.Errorf("create diagnostic: %w", err)
		}

		var responses []*types.DiagnosticResponse
		for _, module := range cs.modules {
			for _, q := range module.Questions {
				answer, ok := state.Answers[q.Key]
				if !ok {
					continue
				}
				r := &types.DiagnosticResponse{
					DiagnosticID: diag.ID,
					Category:     module.ID,
					QuestionKey:  q.Key,
					QuestionText: q.Text,
					AnswerValue:  answer.Value,
					Weight:       q.Weight,
				}
				if answer.Text != "" {
					text := answer.Text
					r.AnswerText = &text
				}
				responses = append(responses, r)
			}
		}
		if _, err := cs.responseRepo.CreateBatch(ctx, tx, responses); err != nil {
			return fmt.Errorf("create responses: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	cs.log.Info("Chat session submitted", "diagnostic_id", diag.ID)
	return diag, nil
}

// parseChatAnswer turns free text into the stored answer. Single-choice
// answers that match an option get that option's ordinal; multi-choice
// answers get a value from the fraction of options mentioned; everything
// else stays text-only and outside scoring.
func parseChatAnswer(q catalog.Question, content string) chatAnswer {
	trimmed := strings.TrimSpace(content)
	answer := chatAnswer{Text: trimmed}

	switch q.Type {
	case catalog.QuestionSelect:
		for i, opt := range q.Options {
			if strings.EqualFold(trimmed, opt) {
				v := catalog.OptionValue(i, len(q.Options))
				answer.Value = &v
				answer.Text = opt
				break
			}
		}
	case catalog.QuestionMultiSelect:
		matched := 0
		for _, part := range splitMultiAnswer(trimmed) {
			if _, ok := catalog.OptionIndex(q, part); ok {
				matched++
				continue
			}
			for _, opt := range q.Options {
				if strings.EqualFold(part, opt) {
					matched++
					break
				}
			}
		}
		if matched > 0 {
			v := catalog.MultiSelectValue(matched, len(q.Options))
			answer.Value = &v
		}
	}
	return answer
}

func splitMultiAnswer(content string) []string {
	parts := strings.FieldsFunc(content, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	out := make([]string, 0, len(parts))
	seen := map[string]bool{}
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || seen[strings.ToLower(p)] {
			continue
		}
		seen[strings.ToLower(p)] = true
		out = append(out, p)
	}
	return out
}

// questionMessages emits the turns that present the pending question: the
// module intro when entering a module, then the question itself.
func questionMessages(modules []catalog.Module, state chatState, baseDelay int) []ChatMessage {
	if state.ModuleIndex >= len(modules) {
		return nil
	}
	module := modules[state.ModuleIndex]
	question := module.Questions[state.QuestionIndex]

	var messages []ChatMessage
	delay := baseDelay
	if state.QuestionIndex == 0 {
		messages = append(messages, ChatMessage{
			Role:    "bot",
			Content: fmt.Sprintf("📋 **%s**\n\n%s\n\nVamos começar!", module.Name, module.Description),
			DelayMS: delay,
		})
		delay = 1500
	}
	messages = append(messages, ChatMessage{Role: "bot", Content: question.Text, DelayMS: delay})
	return messages
}

func skipEmptyModules(modules []catalog.Module, state *chatState) {
	for state.ModuleIndex < len(modules) && len(modules[state.ModuleIndex].Questions) == 0 {
		state.ModuleIndex++
	}
}

// progress is the percentage of the conversation behind the cursor: full
// credit for finished modules plus the answered fraction of the current one.
// It only reaches 100 at completion.
func progress(modules []catalog.Module, state chatState) float64 {
	total := len(modules)
	if total == 0 || state.Completed || state.ModuleIndex >= total {
		return 100
	}
	fraction := 0.0
	if n := len(modules[state.ModuleIndex].Questions); n > 0 {
		fraction = float64(state.QuestionIndex) / float64(n)
	}
	return (float64(state.ModuleIndex)*100 + fraction*100) / float64(total)
}

func (cs *chatFlowService) load(ctx context.Context, sessionID string) (*chatState, error) {
	raw, err := cs.store.Get(ctx, chatKey(sessionID))
	if err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	var state chatState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if state.Answers == nil {
		state.Answers = map[string]chatAnswer{}
	}
	return &state, nil
}

func (cs *chatFlowService) save(ctx context.Context, sessionID string, state chatState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := cs.store.Put(ctx, chatKey(sessionID), raw, sessions.DefaultTTL); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func chatKey(sessionID string) string { return "chat:" + sessionID }
