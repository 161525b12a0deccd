package models

// SynthesizeReq 合成请求体，只认 text 一个字段，多余字段直接忽略
type SynthesizeReq struct {
	Text string `json:"text"`
}
