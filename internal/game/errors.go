package game

import "errors"

var ErrCharacterExists = errors.New("character already exists")
