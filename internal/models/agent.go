package models

// AgentRole describes an agent's class (Duelist, Controller, etc.).
type AgentRole struct {
	UUID        string `json:"uuid"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	DisplayIcon string `json:"displayIcon"`
}

// Agent is a playable character as reported by the upstream catalog API.
// Fields mirror the upstream JSON shape so the payload passes through intact.
type Agent struct {
	UUID                string     `json:"uuid"`
	DisplayName         string     `json:"displayName"`
	Description         string     `json:"description"`
	DisplayIcon         string     `json:"displayIcon"`
	FullPortrait        string     `json:"fullPortrait,omitempty"`
	Background          string     `json:"background,omitempty"`
	Role                *AgentRole `json:"role,omitempty"`
	IsPlayableCharacter bool       `json:"isPlayableCharacter"`
}
