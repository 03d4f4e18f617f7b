package chat

import (
	"context"
	"log/slog"
	"time"

	"webcraft/internal/domain/models/chat"
	chatRepo "webcraft/internal/domain/repositories/chat"
	"webcraft/internal/metrics"
)

// contextWriter performs the read-merge-write of a conversation's project
// memory. Writes for one conversation are serialized by locks, so two turns
// finishing together cannot lose each other's update.
type contextWriter struct {
	convRepo chatRepo.ConversationRepository
	locks    *KeyedMutex
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// merge loads the conversation, asks compute for a patch against the fresh
// context and persists the result when it changed anything.
func (w *contextWriter) merge(
	ctx context.Context,
	id string,
	compute func(existing chat.ProjectContext) chat.ProjectContext,
) (*chat.Conversation, bool, error) {
	unlock := w.locks.Lock(id)
	defer unlock()

	conv, err := w.convRepo.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}

	patch := compute(conv.Context())
	if patch.IsEmpty() {
		return conv, false, nil
	}

	if !conv.ApplyContext(patch) {
		return conv, false, nil
	}

	conv.UpdatedAt = time.Now()
	if err := w.convRepo.UpdateContext(ctx, conv); err != nil {
		return nil, false, err
	}

	w.metrics.ContextUpdated()
	w.logger.Debug("project context updated",
		"conversation_id", id,
		"tech_stack", conv.TechStack,
		"features_built", conv.FeaturesBuilt,
	)

	return conv, true, nil
}
