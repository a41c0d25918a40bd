package objections

import "ScriptForge/pkg/response"

var (
	ErrTemplateNotFound = response.NewError(404, "objection template not found")
	ErrTemplateNotOwned = response.NewError(403, "objection template does not belong to user")
	ErrCreateTemplate   = response.NewError(500, "failed to create objection template")
)
