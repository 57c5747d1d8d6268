package services

import "time"

// resetTokenTTL is how long a pending password-reset token stays valid.
const resetTokenTTL = time.Hour

// timeNow is a seam for tests.
var timeNow = time.Now
