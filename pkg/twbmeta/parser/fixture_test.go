package parser

const sampleWorkbook = `<?xml version='1.0' encoding='utf-8' ?>
<workbook source-build='2023.1.0' version='18.1'>
  <datasources>
    <datasource hasconnection='false' inline='true' name='Parameters' version='18.1'>
      <aliases enabled='yes' />
      <column caption='Target' datatype='integer' name='[Parameter 1]' param-domain-type='any' role='measure' type='quantitative' value='5'>
        <calculation class='tableau' formula='5' />
      </column>
    </datasource>
    <datasource caption='Sample - Superstore' inline='true' name='federated.0a1b' version='18.1'>
      <connection class='federated'>
        <named-connections>
          <named-connection caption='Sample - Superstore' name='excel-direct.1x'>
            <connection class='excel-direct' cleaning='no' filename='C:/Data/Superstore.xls' validate='no' />
          </named-connection>
        </named-connections>
        <metadata-records>
          <metadata-record class='column'>
            <remote-name>Region</remote-name>
          </metadata-record>
        </metadata-records>
      </connection>
      <column datatype='string' name='[Region]' role='dimension' type='nominal' />
      <column datatype='real' name='[Sales]' role='measure' type='quantitative' />
      <column caption='This Year' datatype='real' name='[Calculation_1071856779099492353]' role='measure' type='quantitative'>
        <calculation class='tableau' formula='SUM([Sales])' />
      </column>
      <column caption='Weeks Cover LW' datatype='real' name='[Calculation_1071856779102896130]' role='measure' type='quantitative'>
        <calculation class='tableau' formula='[Calculation_1071856779099492353] / 7' />
      </column>
      <column caption='Running Sales' datatype='real' name='[Calculation_3]' role='measure' type='quantitative'>
        <calculation class='tableau' formula='RUNNING_SUM(SUM([Sales]))' />
      </column>
      <column caption='Sales Rank' datatype='integer' name='[Calculation_4]' role='measure' type='quantitative'>
        <calculation class='tableau' formula='1'>
          <table-calc ordering-type='Rows' />
        </calculation>
      </column>
      <column caption='Sales (bin)' datatype='integer' name='[Sales (bin)]' role='dimension' type='ordinal'>
        <calculation class='bin' decimals='0' peg='0' size='10' />
      </column>
    </datasource>
  </datasources>
  <worksheets>
    <worksheet name='Sales Overview'>
      <table>
        <view>
          <datasources>
            <datasource caption='Sample - Superstore' name='federated.0a1b' />
          </datasources>
          <datasource-dependencies datasource='federated.0a1b'>
            <column datatype='string' name='[Region]' role='dimension' type='nominal' />
            <column caption='This Year' datatype='real' name='[Calculation_1071856779099492353]' role='measure' type='quantitative'>
              <calculation class='tableau' formula='SUM([Sales])' />
            </column>
            <column-instance column='[Region]' derivation='None' name='[none:Region:nk]' pivot='key' type='nominal' />
          </datasource-dependencies>
        </view>
        <panes>
          <pane>
            <encodings>
              <color column='[federated.0a1b].[sum:Sales:qk]' />
              <text column='[federated.0a1b].[:Measure Names]' />
            </encodings>
          </pane>
        </panes>
        <rows>[federated.0a1b].[none:Region:nk]</rows>
      </table>
    </worksheet>
    <worksheet name='Regional Detail'>
      <table>
        <view>
          <datasource-dependencies datasource='federated.0a1b'>
            <column-instance column='[Region]' derivation='None' name='[none:Region:nk]' pivot='key' type='nominal' />
            <column datatype='string' name='[Region]' role='dimension' type='nominal' />
          </datasource-dependencies>
          <datasource-dependencies datasource='Parameters'>
            <column caption='Target' datatype='integer' name='[Parameter 1]' role='measure' type='quantitative' />
          </datasource-dependencies>
        </view>
      </table>
    </worksheet>
  </worksheets>
</workbook>
`
