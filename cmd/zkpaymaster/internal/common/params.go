package common

// Quiet makes commands print only their result.
var Quiet bool
