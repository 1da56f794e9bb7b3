package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskLeadQualify = "lead.qualify"

type LeadQualifyPayload struct {
	LeadID string `json:"leadId"`
}

func NewLeadQualifyTask(payload LeadQualifyPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLeadQualify, data), nil
}

func ParseLeadQualifyPayload(task *asynq.Task) (LeadQualifyPayload, error) {
	var payload LeadQualifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return LeadQualifyPayload{}, err
	}
	return payload, nil
}
