package tooldoc

// OpenAIFunction renders a tool as an OpenAI-style function definition:
// {"type": "function", "function": {name, description, parameters}}.
// The parameters map is the tool's JSON Schema; treat the result as read-only.
func OpenAIFunction(t Tool) map[string]any {
	return map[string]any{
		"type": "function",
		"function": map[string]any{
			"name":        t.Name(),
			"description": t.Description(),
			"parameters":  t.Parameters(),
		},
	}
}

// OpenAIFunctions renders every tool in the registry, sorted by name.
func OpenAIFunctions(r *Registry) []map[string]any {
	tools := r.GetAllTools()
	out := make([]map[string]any, 0, len(tools))
	for _, t := range tools {
		out = append(out, OpenAIFunction(t))
	}
	return out
}
