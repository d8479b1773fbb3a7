package netlist

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

const adderXML = `<?xml version="1.0"?>
<verilator_xml>
  <files>
    <file id="1" filename="adder.v" language="1800-2017"/>
  </files>
  <netlist>
    <module name="TOP">
      <topscope>
        <var name="top.i_a" dir="input" dtype_id="2"/>
        <var name="top.i_b" dir="input" dtype_id="2"/>
        <var name="top.o_sum" dir="output" dtype_id="2"/>
        <var name="top.o_co" dir="output" dtype_id="2"/>
        <assignw>
          <varref name="i_a"/>
          <varref name="o_sum"/>
        </assignw>
        <assignw>
          <varref name="i_b"/>
          <varref name="o_sum"/>
        </assignw>
        <assignw>
          <varref name="i_a"/>
          <varref name="o_co"/>
        </assignw>
        <assignw>
          <varref name="i_b"/>
          <varref name="o_co"/>
        </assignw>
      </topscope>
    </module>
    <typetable>
      <basicdtype id="2" name="logic" left="7" right="0" loc="1,1,1,1,8"/>
    </typetable>
  </netlist>
</verilator_xml>`

func TestAdderPathExistsCombinationalOnly(t *testing.T) {
	nl, err := Load([]byte(adderXML), Options{})
	require.NoError(t, err)
	for _, s := range []string{"i_a", "i_b"} {
		for _, e := range []string{"o_sum", "o_co"} {
			require.True(t, nl.PathExists(s, e), "PathExists(%q, %q)", s, e)
			require.False(t, nl.PathExists(e, s), "combinational logic has no reverse path: PathExists(%q, %q)", e, s)
		}
	}
}

func TestAdderGetNamesExcludesLogicAndSorts(t *testing.T) {
	nl, err := Load([]byte(adderXML), Options{})
	require.NoError(t, err)
	ids := nl.GetNames()
	require.Len(t, ids, 4, "want i_a, i_b, o_sum, o_co")
	for i := 1; i < len(ids); i++ {
		require.LessOrEqual(t, nl.VertexName(ids[i-1]), nl.VertexName(ids[i]), "GetNames() not sorted")
	}
	var buf bytes.Buffer
	nl.FormatNames(&buf, ids, false)
	report := buf.String()
	require.Contains(t, report, "top.i_a")
	require.Contains(t, report, "Name")
}

const pipelineXML = `<?xml version="1.0"?>
<verilator_xml>
  <files>
    <file id="1" filename="pipeline.v" language="1800-2017"/>
  </files>
  <netlist>
    <module name="TOP">
      <topscope>
        <var name="top.i_clk" dir="input" dtype_id="2"/>
        <var name="top.i_data" dir="input" dtype_id="2"/>
        <var name="top.g_pipestage.0.u_pipestage.data_q" dtype_id="2"/>
        <var name="top.g_pipestage.1.u_pipestage.data_q" dtype_id="2"/>
        <var name="top.g_pipestage.2.u_pipestage.data_q" dtype_id="2"/>
        <always>
          <assigndly>
            <varref name="i_data"/>
            <varref name="g_pipestage.0.u_pipestage.data_q"/>
          </assigndly>
        </always>
        <always>
          <assigndly>
            <varref name="g_pipestage.0.u_pipestage.data_q"/>
            <varref name="g_pipestage.1.u_pipestage.data_q"/>
          </assigndly>
        </always>
        <always>
          <assigndly>
            <varref name="g_pipestage.1.u_pipestage.data_q"/>
            <varref name="g_pipestage.2.u_pipestage.data_q"/>
          </assigndly>
        </always>
      </topscope>
    </module>
    <typetable>
      <basicdtype id="2" name="logic" left="7" right="0" loc="1,1,1,1,8"/>
    </typetable>
  </netlist>
</verilator_xml>`

func TestPipelineRegExistsAcrossNameForms(t *testing.T) {
	nl, err := Load([]byte(pipelineXML), Options{})
	require.NoError(t, err)
	forms := []string{
		"top.g_pipestage.0.u_pipestage.data_q",
		"top/g_pipestage/0/u_pipestage/data_q",
		"top_g_pipestage_0_u_pipestage_data_q",
		"g_pipestage.0.*data_q",
	}
	for _, f := range forms {
		require.True(t, nl.RegExists(f), "RegExists(%q)", f)
	}
}

func TestPipelineAdjacentStagesHavePath(t *testing.T) {
	nl, err := Load([]byte(pipelineXML), Options{})
	require.NoError(t, err)
	stages := []string{
		"g_pipestage.0.u_pipestage.data_q",
		"g_pipestage.1.u_pipestage.data_q",
		"g_pipestage.2.u_pipestage.data_q",
	}
	for i := 0; i+1 < len(stages); i++ {
		require.True(t, nl.PathExists(stages[i], stages[i+1]), "PathExists(%q, %q)", stages[i], stages[i+1])
	}
}

const midpointXML = `<?xml version="1.0"?>
<verilator_xml>
  <files>
    <file id="1" filename="relay.v" language="1800-2017"/>
  </files>
  <netlist>
    <module name="TOP">
      <topscope>
        <var name="top.i_data" dir="input" dtype_id="2"/>
        <var name="top.reg_in" dtype_id="2"/>
        <var name="top.wire_mid" dtype_id="2"/>
        <var name="top.reg_out" dtype_id="2"/>
        <always>
          <assigndly>
            <varref name="i_data"/>
            <varref name="reg_in"/>
          </assigndly>
        </always>
        <assignw>
          <varref name="reg_in"/>
          <varref name="wire_mid"/>
        </assignw>
        <always>
          <assigndly>
            <varref name="wire_mid"/>
            <varref name="reg_out"/>
          </assigndly>
        </always>
      </topscope>
    </module>
    <typetable>
      <basicdtype id="2" name="logic" left="7" right="0" loc="1,1,1,1,8"/>
    </typetable>
  </netlist>
</verilator_xml>`

func TestWaypointsAnyAndAllPathsThroughMiddlePoint(t *testing.T) {
	nl, err := Load([]byte(midpointXML), Options{})
	require.NoError(t, err)
	require.NoError(t, nl.Waypoints.AddStartPoint("reg_in"))
	require.NoError(t, nl.Waypoints.AddFinishPoint("reg_out"))
	nl.Waypoints.AddThroughPoint("wire_mid")

	path, err := nl.GetAnyPathThroughWaypoints()
	require.NoError(t, err)
	require.NotEmpty(t, path, "expected a non-empty path through reg_in -> wire_mid -> reg_out")

	var buf bytes.Buffer
	nl.FormatPath(&buf, path, false)
	report := buf.String()
	require.Contains(t, report, "reg_in")
	require.Contains(t, report, "reg_out")

	all, err := nl.GetAllPathsThroughWaypoints()
	require.NoError(t, err)
	require.NotEmpty(t, all, "expected at least one path from the all-paths search")
}

func TestNonExistentPointDoesNotRaise(t *testing.T) {
	nl, err := Load([]byte(adderXML), Options{})
	require.NoError(t, err)
	require.False(t, nl.StartpointExists("does_not_exist"))
	require.False(t, nl.PathExists("does_not_exist", "o_sum"), "PathExists with a non-existent start should be false, not raise")
}

func TestPathExistsDoesNotMutateAccumulatedWaypoints(t *testing.T) {
	nl, err := Load([]byte(adderXML), Options{})
	require.NoError(t, err)
	require.NoError(t, nl.Waypoints.AddStartPoint("i_a"))
	require.NoError(t, nl.Waypoints.AddFinishPoint("o_sum"))

	require.True(t, nl.PathExists("i_b", "o_co"))

	require.Equal(t, 2, nl.Waypoints.NumWaypoints(), "PathExists must not clear accumulated waypoints")
	require.Equal(t, []string{"i_a", "o_sum"}, nl.Waypoints.Names())
}

const counterXML = `<?xml version="1.0"?>
<verilator_xml>
  <files>
    <file id="1" filename="counter.v" language="1800-2017"/>
  </files>
  <netlist>
    <module name="TOP">
      <topscope>
        <var name="top.i_clk" dir="input" dtype_id="2"/>
        <var name="top.i_rst" dir="input" dtype_id="2"/>
        <var name="top.o_count" dir="output" dtype_id="2"/>
        <var name="top.o_wrap" dir="output" dtype_id="2"/>
        <var name="top.counter_q" dtype_id="2"/>
        <always>
          <senitem/>
          <assigndly>
            <varref name="i_clk"/>
            <varref name="counter_q"/>
          </assigndly>
        </always>
        <assignw>
          <varref name="counter_q"/>
          <varref name="o_count"/>
        </assignw>
        <assignw>
          <varref name="counter_q"/>
          <varref name="o_wrap"/>
        </assignw>
      </topscope>
    </module>
    <typetable>
      <basicdtype id="2" name="logic" left="7" right="0" loc="1,1,1,1,8"/>
    </typetable>
  </netlist>
</verilator_xml>`

// TestCounterRegisterSeversCombinationalReach exercises the one seed
// scenario (a register with both a delayed write and downstream
// combinational reads) that distinguishes an effective register barrier
// from a traversal that just follows every out-edge unconditionally: a
// clock reaching counter_q is not a path all the way through to a signal
// counter_q itself drives.
func TestCounterRegisterSeversCombinationalReach(t *testing.T) {
	nl, err := Load([]byte(counterXML), Options{})
	require.NoError(t, err)

	require.True(t, nl.RegExists("counter_q"))
	require.True(t, nl.PathExists("i_clk", "counter_q"))
	require.True(t, nl.PathExists("counter_q", "o_count"))
	require.True(t, nl.PathExists("counter_q", "o_wrap"))
	require.False(t, nl.PathExists("i_clk", "o_wrap"), "the register should sever combinational reach")
}

func TestFanoutAndFaninDegreeOnAdder(t *testing.T) {
	nl, err := Load([]byte(adderXML), Options{})
	require.NoError(t, err)
	deg, err := nl.FanoutDegree("i_a")
	require.NoError(t, err)
	require.NotZero(t, deg, "expected i_a to fan out to at least one output")

	deg, err = nl.FaninDegree("o_sum")
	require.NoError(t, err)
	require.NotZero(t, deg, "expected o_sum to have fan-in from at least one input")
}
