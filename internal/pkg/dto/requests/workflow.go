package requests

type TriggerRun struct {
	Environment      string `json:"environment" validate:"omitempty,oneof=stage dev"`
	SkipVerification bool   `json:"skip_verification"`
	Tag              string `json:"tag" validate:"omitempty,max=32,alphanum"`
}
