package raster

import "errors"

var errNotBegun = errors.New("raster: output requested before Begin")
