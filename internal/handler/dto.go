package handler

import "frontierwatch/internal/bias"

type AnalyzeRequest struct {
	Data                []map[string]any             `json:"data"`
	ProtectedAttributes []string                     `json:"protected_attributes"`
	GroupMappings       map[string]bias.GroupMapping `json:"group_mappings"`
}

type AnalyzeResponse struct {
	Results []bias.Result `json:"results"`
	Message string        `json:"message"`
}
