package source

import "errors"

var ErrSourceEmpty = errors.New("source content is empty")
var ErrFilenameEmpty = errors.New("filename is empty")
var ErrImportNotFound = errors.New("import not found")
