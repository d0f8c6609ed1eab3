package main

import (
	"context"

	"github.com/umputun/delta/pkg/assistant"
	"github.com/umputun/delta/pkg/dict"
)

// dictAdapter converts the dictionary client result to the assistant type
type dictAdapter struct {
	client *dict.Client
}

// Define implements the assistant.DictProvider interface
func (a *dictAdapter) Define(ctx context.Context, word string) (*assistant.DictDefinition, error) {
	def, err := a.client.Define(ctx, word)
	if err != nil {
		return nil, err
	}
	return &assistant.DictDefinition{
		Word:         def.Word,
		PartOfSpeech: def.PartOfSpeech,
		Meaning:      def.Meaning,
	}, nil
}
