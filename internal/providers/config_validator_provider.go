package providers

import (
	"errors"
	"github.com/gookit/validate"
	"scoreboard/internal/structures"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (c *CnfValidator) Validate() error {
	v := validate.Struct(c.conf)
	if !v.Validate() {
		return errors.New(v.Errors.String())
	}
	return nil
}
