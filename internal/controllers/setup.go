package controllers

import (
	"github.com/jairomatosve/voyagedesigner/internal/ai"
	"github.com/jairomatosve/voyagedesigner/internal/auth"
	"github.com/jairomatosve/voyagedesigner/internal/cache"
)

// Package-level collaborators, assigned once at startup alongside
// config.InitDB. GeneratorName tags published events ("gemini" or "mock").
var (
	Provider      auth.Provider
	Generator     ai.Generator
	Suggestions   *cache.SuggestionStore
	GeneratorName string
)

func Setup(provider auth.Provider, generator ai.Generator, generatorName string, suggestions *cache.SuggestionStore) {
	Provider = provider
	Generator = generator
	GeneratorName = generatorName
	Suggestions = suggestions
}
