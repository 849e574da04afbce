// SPDX-License-Identifier: MIT

package element

import logging "github.com/op/go-logging"

var log = logging.MustGetLogger("minplus/element")
