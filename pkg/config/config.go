package config

const (
	// AppName is the product name used in labels and image names.
	AppName = "hbase"
	// OperatorName names the operator in the managed-by label.
	OperatorName = "hbase.stackable.tech"
	// ControllerName is appended to OperatorName in the managed-by label.
	ControllerName = "hbasecluster"
	// FieldManager identifies writes made by the operator.
	FieldManager = "hbase-operator"
)

// OperatorVersion is the default stackable image version. It is set at build time.
var OperatorVersion = "0.0.0-dev"

const (
	// DefaultImageRepo is used when the cluster does not name a repository.
	DefaultImageRepo = "docker.stackable.tech/stackable"
	// DefaultPullPolicy is used when the cluster does not name a pull policy.
	DefaultPullPolicy = "Always"
)

const (
	// directories inside the hbase container
	ConfigDir        = "/stackable/conf"
	HdfsConfigDir    = "/stackable/conf/hdfs"
	LogConfigDir     = "/stackable/log_config"
	LogDir           = "/stackable/log"
	ListenerDir      = "/stackable/listener"
	KerberosDir      = "/stackable/kerberos"
	TLSStoreDir      = "/stackable/tls"
	JmxDir           = "/stackable/jmx"
	TmpHbaseDir      = "/stackable/tmp/hbase"
	TmpHdfsDir       = "/stackable/tmp/hdfs"
	HbaseHome        = "/stackable/hbase"
	KerberosKeytab   = KerberosDir + "/keytab"
	KerberosConfFile = KerberosDir + "/krb5.conf"

	TLSStorePassword = "changeit"

	// HbaseLogDir is the directory log4j2 writes to.
	HbaseLogDir = LogDir + "/hbase"
)

const (
	// config files rendered into the role group ConfigMap
	HbaseSiteXML       = "hbase-site.xml"
	HbaseEnvSh         = "hbase-env.sh"
	SSLServerXML       = "ssl-server.xml"
	SSLClientXML       = "ssl-client.xml"
	SecurityProperties = "security.properties"
	Log4j2Properties   = "log4j2.properties"
	VectorYaml         = "vector.yaml"
	// EnvFile is the pseudo file name of environment variables in property bundles.
	EnvFile = "env"

	// files read from the HDFS discovery ConfigMap
	CoreSiteXML = "core-site.xml"
	HdfsSiteXML = "hdfs-site.xml"
)

const (
	// volume names
	ConfigVolume          = "hbase-config"
	HdfsDiscoveryVolume   = "hdfs-discovery"
	LogConfigVolume       = "log-config"
	LogVolume             = "log"
	ListenerVolume        = "listener"
	KerberosVolume        = "kerberos"
	TLSVolume             = "tls"
	LogVolumeSizeInMiB    = 30
	MaxLogFilesSizeInMiB  = 10
	ArchivedLogFilesCount = 1
)

const (
	// container names
	HbaseContainer  = "hbase"
	VectorContainer = "vector"
)

const (
	// product config keys
	HbaseClusterDistributed = "hbase.cluster.distributed"
	HbaseRootdir            = "hbase.rootdir"
	HbaseZookeeperQuorum    = "hbase.zookeeper.quorum"
	HbaseZookeeperPort      = "hbase.zookeeper.property.clientPort"
	ZookeeperZnodeParent    = "zookeeper.znode.parent"
	HbaseManagesZK          = "HBASE_MANAGES_ZK"
	HbaseHeapsize           = "HBASE_HEAPSIZE"
	HbaseOpts               = "HBASE_OPTS"
)

const (
	// ports
	MasterPort            = 16000
	MasterUIPort          = 16010
	RegionServerPort      = 16020
	RegionServerUIPort    = 16030
	RestServerPort        = 8080
	RestServerInfoPort    = 8085
	MetricsPort           = 9100
	DefaultListenerClass  = "cluster-internal"
	ListenerStorageClass  = "listeners.stackable.tech"
	ListenerClassAnnotKey = "listeners.stackable.tech/listener-class"
)

// RootLogger is the logger name that configures the root log level.
const RootLogger = "ROOT"
