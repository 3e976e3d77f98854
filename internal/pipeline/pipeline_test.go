package pipeline

import (
	bloqs "github.com/alnah/go-bloqs"
)

func bloqsEnv() bloqs.Env {
	return bloqs.DefaultEnv()
}
