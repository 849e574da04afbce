// SPDX-License-Identifier: MIT

package curve

import logging "github.com/op/go-logging"

var log = logging.MustGetLogger("minplus/curve")
