package rolegroup

import (
	"fmt"
	"strings"

	"github.com/opencurve/hbase-operator/pkg/config"
	"github.com/opencurve/hbase-operator/pkg/daemon"
	"github.com/opencurve/hbase-operator/pkg/kerberos"
	"github.com/opencurve/hbase-operator/pkg/logging"
	"github.com/opencurve/hbase-operator/pkg/roles"
)

var shellCommand = []string{"/bin/bash", "-x", "-euo", "pipefail", "-c"}

const listenerAddressDir = config.ListenerDir + "/default-address"

// signalHandlers forwards SIGTERM to hbase. A region server unloads its
// regions first when the region mover is enabled.
const signalHandlers = `prepare_signal_handlers()
{
    unset term_child_pid
    unset term_kill_needed
    trap 'handle_term_signal' TERM
}

handle_term_signal()
{
    if [ "${term_child_pid}" ]; then
        if [ "${REGION_MOVER_OPTS}" ] && [ "${RUN_REGION_MOVER}" = "true" ]; then
            echo "Unloading regions before shutdown"
            ` + config.HbaseHome + `/bin/hbase org.apache.hadoop.hbase.util.RegionMover \
                ${REGION_MOVER_OPTS} \
                --regionserverhost=${HBASE_SERVICE_HOST}:${HBASE_SERVICE_PORT} \
                --operation=unload
        fi
        kill -TERM "${term_child_pid}" 2>/dev/null
    else
        term_kill_needed="yes"
    fi
}

wait_for_termination()
{
    set +e
    term_child_pid=$1
    if [[ -v term_kill_needed ]]; then
        kill -TERM "${term_child_pid}" 2>/dev/null
    fi
    wait ${term_child_pid} 2>/dev/null
    trap - TERM
    wait ${term_child_pid} 2>/dev/null
    set -e
}
`

// startCommand is the script of the hbase container. The config volumes are
// mounted read only, so the files are copied before the realm and the
// listener address are filled in.
func startCommand(c *daemon.Cluster, role roles.Role, https bool, vectorEnabled bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "mkdir -p %s %s\n", config.ConfigDir, config.HdfsConfigDir)
	fmt.Fprintf(&b, "cp %s/%s %s/%s %s\n", config.TmpHdfsDir, config.CoreSiteXML, config.TmpHdfsDir, config.HdfsSiteXML, config.HdfsConfigDir)
	fmt.Fprintf(&b, "cp %s/* %s\n", config.TmpHbaseDir, config.ConfigDir)
	fmt.Fprintf(&b, "cp %s/%s %s\n", config.LogConfigDir, config.Log4j2Properties, config.ConfigDir)

	if cmds := kerberos.ContainerStartCommands(c.HbaseCluster); cmds != "" {
		b.WriteString(cmds)
		b.WriteString("\n")
	}

	ports := roles.Ports(role, c.Image.ProductVersion, https)
	fmt.Fprintf(&b, "export %s=$(cat %s/address)\n", serviceHostEnv, listenerAddressDir)
	fmt.Fprintf(&b, "export %s=$(cat %s/ports/%s)\n", servicePortEnv, listenerAddressDir, ports[0].Name)
	fmt.Fprintf(&b, "export %s=$(cat %s/ports/%s)\n", infoPortEnv, listenerAddressDir, ports[1].Name)

	b.WriteString("\n")
	b.WriteString(signalHandlers)
	b.WriteString("\nprepare_signal_handlers\n")
	fmt.Fprintf(&b, "%s/bin/hbase %s start &\n", config.HbaseHome, role.CLIRoleName())
	b.WriteString("wait_for_termination $!\n")
	if vectorEnabled {
		b.WriteString(logging.ShutdownVectorCommand())
		b.WriteString("\n")
	}
	return b.String()
}
