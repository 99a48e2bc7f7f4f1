package cratetools

var Name = "cratetools"
var Version = "v0.2.0"
