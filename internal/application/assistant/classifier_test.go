package assistant_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-wizard/internal/application/assistant"
	"github.com/jhoicas/retail-wizard/internal/application/ports"
	domassistant "github.com/jhoicas/retail-wizard/internal/domain/assistant"
	"github.com/jhoicas/retail-wizard/pkg/logger"
)

func TestClassify_EnviaPromptFijoYConsulta(t *testing.T) {
	llm := &fakeLLM{replies: []string{`{"intent":"get_stock","dc_number":"3","sku_number":"30000913","location_type":"W"}`}}
	c := assistant.NewClassifier(llm, assistant.DefaultPrompts(), logger.Nop())

	res := c.Classify(context.Background(), "stock of 30000913 at DC 3")

	assert.Equal(t, domassistant.IntentGetStock, res.Intent)
	require.Len(t, llm.received, 1)
	msgs := llm.received[0]
	require.Len(t, msgs, 2)
	assert.Equal(t, ports.RoleSystem, msgs[0].Role)
	assert.Equal(t, assistant.DefaultPrompts().Classifier, msgs[0].Content)
	assert.Equal(t, ports.RoleUser, msgs[1].Role)
	assert.Equal(t, "stock of 30000913 at DC 3", msgs[1].Content)
}

func TestClassify_RespuestaBasuraEsUnknown(t *testing.T) {
	llm := &fakeLLM{replies: []string{"I am not sure what you mean"}}
	c := assistant.NewClassifier(llm, assistant.DefaultPrompts(), logger.Nop())

	res := c.Classify(context.Background(), "hola")
	assert.Equal(t, domassistant.IntentUnknown, res.Intent)
	assert.Contains(t, res.Reasoning, "Could not parse JSON")
}

func TestClassify_ErrorDelModeloEsUnknown(t *testing.T) {
	llm := &fakeLLM{err: errors.New("connection refused")}
	c := assistant.NewClassifier(llm, assistant.DefaultPrompts(), logger.Nop())

	res := c.Classify(context.Background(), "hola")
	assert.Equal(t, domassistant.IntentUnknown, res.Intent)
	assert.Contains(t, res.Reasoning, "connection refused")
}

func TestClassify_AliasesDelPerfil(t *testing.T) {
	prompts := assistant.DefaultPrompts()
	prompts.IntentAliases = map[string]string{"inventory_check": "get_stock"}
	llm := &fakeLLM{replies: []string{`{"intent":"inventory_check"}`}}
	c := assistant.NewClassifier(llm, prompts, logger.Nop())

	res := c.Classify(context.Background(), "x")
	assert.Equal(t, domassistant.IntentGetStock, res.Intent)
}

func TestSummarize_RecortaRespuesta(t *testing.T) {
	llm := &fakeLLM{replies: []string{"\n  todo en orden \n"}}
	s := assistant.NewSummarizer(llm)

	out, err := s.Summarize(context.Background(), "instr", assistant.LabeledPayload{Label: "Event Data", Data: []byte(` [1] `)})
	require.NoError(t, err)
	assert.Equal(t, "todo en orden", out)
	assert.Equal(t, "Event Data: [1]", llm.received[0][1].Content)
}
